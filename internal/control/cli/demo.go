package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/edit"
	"github.com/Lotendan/wxWidgets/internal/edit/editors"
	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/ui"
	"github.com/Lotendan/wxWidgets/internal/win"
)

// demoSheet constructs the built-in demonstration sheet, registering the
// custom editors it uses.
func demoSheet(registry *edit.Registry) []model.Property {
	counter := model.NewIntProperty("counter", "Counter", 0)
	if ed, err := registry.Register(&demoMultiButtonEditor{}); err != nil {
		log.Warn().Err(err).Msg("unable to register demo editor")
	} else {
		counter.SetEditorName(ed.Name())
	}

	name := model.NewStringProperty("name", "Name", "unnamed")
	age := model.NewIntProperty("age", "Age", 30)
	age.SetEditorName("SpinCtrl")
	height := model.NewFloatProperty("height", "Height (m)", 1.75)
	member := model.NewBoolProperty("member", "Member", false)
	diet := model.NewEnumProperty("diet", "Diet", []string{"omnivore", "vegetarian", "vegan"}, 0)
	birthday := model.NewDateProperty("birthday", "Birthday", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	birthday.SetEditorName("DatePickerCtrl")
	homepage := model.NewStringProperty("homepage", "Homepage", "https://example.org")
	homepage.SetEditorName("ComboBox")

	properties := []model.Property{name, age, height, member, diet, birthday, homepage, counter}

	if daylight := daylightProperty(); daylight != nil {
		properties = append(properties, daylight)
	}

	return properties
}

// daylightProperty computes today's daylight duration for the location given
// via the LATITUDE and LONGITUDE environment variables, as a read-only
// property. Returns nil if the location is not configured.
func daylightProperty() model.Property {
	latitude, errLat := strconv.ParseFloat(os.Getenv("LATITUDE"), 64)
	longitude, errLon := strconv.ParseFloat(os.Getenv("LONGITUDE"), 64)
	if errLat != nil || errLon != nil {
		return nil
	}

	now := time.Now()
	rise, set := sunrise.SunriseSunset(latitude, longitude, now.Year(), now.Month(), now.Day())
	daylight := set.Sub(rise)

	p := model.NewStringProperty(
		"daylight", "Daylight today",
		fmt.Sprintf("%dh %dmin", int(daylight.Hours()), int(daylight.Minutes())%60),
	)
	p.SetReadOnly(true)
	return p
}

// demoMultiButtonEditor is a text editor for an integer property with three
// attached buttons incrementing, decrementing, and zeroing the value.
type demoMultiButtonEditor struct {
	editors.TextCtrlEditor
}

func (e *demoMultiButtonEditor) Name() string { return "DemoMultiButton" }

func (e *demoMultiButtonEditor) CreateControls(host edit.Host, property model.Property, pos ui.Point, size ui.Size) edit.WindowList {
	buttons := edit.NewMultiButton(host, size)
	buttons.AddGlyph('+', win.IDAuto)
	buttons.AddGlyph('-', win.IDAuto)
	buttons.Add("0", win.IDAuto)

	wnds := e.TextCtrlEditor.CreateControls(host, property, pos, buttons.PrimarySize())
	buttons.FinalizePosition(pos)
	wnds.SetSecondary(buttons)
	return wnds
}

func (e *demoMultiButtonEditor) OnEvent(host edit.Host, property model.Property, primary win.Window, event win.Event) bool {
	ev, ok := event.(win.CommandEvent)
	if !ok || ev.Kind != win.CommandButtonClicked {
		return e.TextCtrlEditor.OnEvent(host, property, primary, event)
	}

	buttons, ok := host.SecondaryControl().(*edit.MultiButton)
	if !ok {
		return false
	}
	tc := primary.(*win.TextCtrl)
	n, _ := strconv.Atoi(tc.Value())

	switch ev.ID {
	case buttons.ButtonID(0):
		tc.SetValue(strconv.Itoa(n + 1))
	case buttons.ButtonID(1):
		tc.SetValue(strconv.Itoa(n - 1))
	case buttons.ButtonID(2):
		tc.SetValue("0")
	default:
		return false
	}
	return true
}
