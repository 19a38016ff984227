package cli

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/config"
	"github.com/Lotendan/wxWidgets/internal/control/action"
	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/grid"
	"github.com/Lotendan/wxWidgets/internal/input"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/storage"
	"github.com/Lotendan/wxWidgets/internal/styling"
	"github.com/Lotendan/wxWidgets/internal/tui"
	"github.com/Lotendan/wxWidgets/internal/ui"
)

type controllerEvent int

const (
	controllerEventRender controllerEvent = iota
	controllerEventExit
)

// Controller drives the property-grid TUI: it owns the screen, the panes,
// and the main event loop.
type Controller struct {
	controllerEvents chan controllerEvent

	screenHandler *tui.ScreenHandler
	screenEvents  tui.EventPollable
	syncer        tui.ScreenSynchronizer

	wrangler *ui.CursorWrangler

	gridPane   *grid.PropertyGrid
	statusPane *grid.StatusPane

	keymap input.Keymap

	sheet storage.SheetProvider

	tuiLogger zerolog.Logger
}

// NewController sets up the screen, panes and keymap.
func NewController(
	configData config.Config,
	stylesheet styling.Stylesheet,
	registry *edit.Registry,
	sheet storage.SheetProvider,
	properties []model.Property,
	stderrLogger zerolog.Logger,
	tuiLogger zerolog.Logger,
) *Controller {
	controller := Controller{
		sheet:     sheet,
		tuiLogger: tuiLogger,
	}

	controller.screenHandler = tui.NewTUIScreenHandler()
	controller.screenEvents = controller.screenHandler.GetEventPollable()
	controller.syncer = controller.screenHandler

	controller.wrangler = ui.NewCursorWrangler(controller.screenHandler)

	screenDimensions := controller.screenHandler.Dimensions
	gridDimensions := func() (x, y, w, h int) {
		x, y, w, h = screenDimensions()
		return x, y, w, h - 1
	}
	statusDimensions := func() (x, y, w, h int) {
		x, y, w, h = screenDimensions()
		return x, y + h - 1, w, 1
	}

	controller.gridPane = grid.New(
		ui.NewConstrainedRenderer(controller.screenHandler, gridDimensions),
		gridDimensions,
		stylesheet,
		controller.wrangler,
		registry,
		properties,
	)
	controller.gridPane.OnChange = func(p model.Property) {
		if controller.sheet == nil {
			return
		}
		if err := controller.sheet.CommitProperty(p); err != nil {
			log.Warn().Err(err).Str("property", p.Name()).Msg("unable to commit property")
		}
	}

	controller.statusPane = grid.NewStatusPane(
		ui.NewConstrainedRenderer(controller.screenHandler, statusDimensions),
		statusDimensions,
		stylesheet,
		func() string {
			selected := controller.gridPane.Selected()
			if controller.gridPane.Editing() {
				return fmt.Sprintf("editing %s (editor: %s)", selected.Label(), selected.EditorName())
			}
			return fmt.Sprintf("%s: %s", selected.Label(), selected.Name())
		},
	)

	keymap, err := buildKeymap(configData.Keys, &controller)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("unable to construct keymap")
	}
	controller.keymap = keymap

	return &controller
}

func buildKeymap(keys map[string]string, controller *Controller) (input.Keymap, error) {
	spec := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range keys {
		mappedAction, err := controller.actionFor(input.Actionspec(actionspec))
		if err != nil {
			return nil, err
		}
		spec[input.Keyspec(keyspec)] = mappedAction
	}
	return input.ConstructKeymap(spec)
}

func (c *Controller) actionFor(spec input.Actionspec) (action.Action, error) {
	switch spec {
	case "select-next":
		return action.NewSimple(func() string { return "select the next property" }, c.gridPane.SelectNext), nil
	case "select-prev":
		return action.NewSimple(func() string { return "select the previous property" }, c.gridPane.SelectPrev), nil
	case "begin-edit":
		return action.NewSimple(func() string { return "edit the selected property" }, c.gridPane.BeginEdit), nil
	case "set-unspecified":
		return action.NewSimple(func() string { return "clear the selected property's value" }, c.gridPane.SetUnspecified), nil
	case "write-sheet":
		return action.NewSimple(func() string { return "write the sheet to its file" }, c.writeSheet), nil
	case "quit":
		return action.NewSimple(func() string { return "exit the program" }, func() {
			c.controllerEvents <- controllerEventExit
		}), nil
	default:
		return nil, fmt.Errorf("unknown action '%s'", string(spec))
	}
}

func (c *Controller) writeSheet() {
	if c.sheet == nil {
		log.Warn().Msg("no sheet backing store to write to")
		return
	}
	if err := c.sheet.Flush(); err != nil {
		log.Error().Err(err).Msg("unable to write sheet")
	}
}

func (c *Controller) render() {
	c.screenHandler.Clear()
	c.gridPane.Draw()
	c.statusPane.Draw()
	c.wrangler.Enact()
	c.screenHandler.Show()
}

// emptyRenderEvents empties all buffered render events from the channel.
// Returns true if an exit event was encountered, so the caller knows to
// exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the controller's render and event loops until exit.
func (c *Controller) Run() {
	log.Info().Msg("pgrid TUI started")

	c.controllerEvents = make(chan controllerEvent, 32)
	var wg sync.WaitGroup

	// the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.screenHandler.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				if emptyRenderEvents(c.controllerEvents) {
					return
				}
				c.render()
			case controllerEventExit:
				return
			}
		}
	}()

	// the event loop, that waits for and processes events and pings for a
	// redraw (or program exit) after each event
	go func() {
		for {
			ev := c.screenEvents.PollEvent()

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				inputApplied := c.gridPane.HandleKey(key)
				if !inputApplied {
					inputApplied = c.keymap.Handle(key)
				}
				if !inputApplied {
					log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventMouse:
				if e.Buttons()&tcell.Button1 != 0 {
					x, y := e.Position()
					c.gridPane.HandleClick(x, y)
				}

			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}

			c.controllerEvents <- controllerEventRender
		}
	}()

	c.controllerEvents <- controllerEventRender

	wg.Wait()
}
