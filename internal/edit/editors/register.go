package editors

import (
	"github.com/rs/zerolog/log"

	"github.com/Lotendan/wxWidgets/internal/edit"
)

// RegisterDefaults registers the built-in editors with the given registry.
func RegisterDefaults(r *edit.Registry) {
	mustRegister(r,
		&TextCtrlEditor{},
		&ChoiceEditor{},
		&ComboBoxEditor{},
		&CheckBoxEditor{},
		&TextCtrlAndButtonEditor{},
		&ChoiceAndButtonEditor{},
	)
}

// RegisterAdditional registers the editors that are not part of the default
// set.
func RegisterAdditional(r *edit.Registry) {
	mustRegister(r,
		&SpinCtrlEditor{},
		&DatePickerCtrlEditor{},
	)
}

func mustRegister(r *edit.Registry, eds ...edit.Editor) {
	for _, ed := range eds {
		if _, err := r.Register(ed); err != nil {
			log.Fatal().Err(err).Str("editor", ed.Name()).Msg("unable to register editor")
		}
	}
}
