package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Lotendan/wxWidgets/internal/model"
	"github.com/Lotendan/wxWidgets/internal/storage"
)

const testSheet = `properties:
  - name: name
    label: Name
    type: string
    value: "Ada"
  - name: age
    type: int
    value: "36"
    editor: SpinCtrl
  - name: member
    type: bool
    value: "true"
  - name: diet
    type: enum
    value: vegetarian
    choices: [omnivore, vegetarian, vegan]
  - name: birthday
    type: date
    value: "1815-12-10"
  - name: note
    type: string
    value: null
  - name: id
    type: string
    value: "worker-1"
    read-only: true
`

func writeTestSheet(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatal("unable to write test sheet:", err)
	}
	return filename
}

func TestYAMLSheetHandler(t *testing.T) {

	t.Run("Load", func(t *testing.T) {
		h := storage.NewYAMLSheetHandler(writeTestSheet(t, testSheet))
		properties, err := h.Properties()
		if err != nil {
			t.Fatal("load failed:", err)
		}
		if len(properties) != 7 {
			t.Fatal("unexpected property count:", len(properties))
		}

		byName := map[string]model.Property{}
		for _, p := range properties {
			byName[p.Name()] = p
		}

		if p := byName["name"]; p.Label() != "Name" || p.ValueString() != "Ada" {
			t.Error("string property loaded wrong:", p.Label(), p.ValueString())
		}
		if p := byName["age"]; p.ValueString() != "36" || p.EditorName() != "SpinCtrl" {
			t.Error("int property loaded wrong:", p.ValueString(), p.EditorName())
		}
		if p := byName["member"]; p.ValueString() != "true" {
			t.Error("bool property loaded wrong:", p.ValueString())
		}
		if p := byName["diet"]; p.ValueString() != "vegetarian" {
			t.Error("enum property loaded wrong:", p.ValueString())
		}
		if p := byName["birthday"]; p.ValueString() != "1815-12-10" {
			t.Error("date property loaded wrong:", p.ValueString())
		}
		if p := byName["note"]; !p.Value().IsNull() {
			t.Error("null-valued property not unspecified")
		}
		if p := byName["id"]; !p.ReadOnly() {
			t.Error("read-only flag not applied")
		}
		// a label defaults to the name
		if p := byName["age"]; p.Label() != "age" {
			t.Error("label default wrong:", p.Label())
		}
	})

	t.Run("LoadErrors", func(t *testing.T) {
		for name, content := range map[string]string{
			"unknown type": "properties:\n  - name: x\n    type: widget\n",
			"bad int":      "properties:\n  - name: x\n    type: int\n    value: abc\n",
			"bad date":     "properties:\n  - name: x\n    type: date\n    value: 10.12.1815\n",
			"not yaml":     "{",
		} {
			h := storage.NewYAMLSheetHandler(writeTestSheet(t, content))
			if _, err := h.Properties(); err == nil {
				t.Error("no error for", name)
			}
		}
	})

	t.Run("CommitAndFlushRoundtrip", func(t *testing.T) {
		filename := writeTestSheet(t, testSheet)
		h := storage.NewYAMLSheetHandler(filename)
		properties, err := h.Properties()
		if err != nil {
			t.Fatal("load failed:", err)
		}

		var name model.Property
		for _, p := range properties {
			if p.Name() == "name" {
				name = p
			}
		}
		name.SetValue(model.StringVariant("Grace"))
		if err := h.CommitProperty(name); err != nil {
			t.Fatal("commit failed:", err)
		}
		if err := h.Flush(); err != nil {
			t.Fatal("flush failed:", err)
		}

		reloaded, err := storage.NewYAMLSheetHandler(filename).Properties()
		if err != nil {
			t.Fatal("reload failed:", err)
		}
		for _, p := range reloaded {
			if p.Name() == "name" && p.ValueString() != "Grace" {
				t.Error("committed value not persisted:", p.ValueString())
			}
		}
	})

	t.Run("CommitUnspecified", func(t *testing.T) {
		filename := writeTestSheet(t, testSheet)
		h := storage.NewYAMLSheetHandler(filename)
		properties, err := h.Properties()
		if err != nil {
			t.Fatal("load failed:", err)
		}
		p := properties[0]
		p.SetValue(model.NullVariant())
		if err := h.CommitProperty(p); err != nil {
			t.Fatal("commit failed:", err)
		}
		if err := h.Flush(); err != nil {
			t.Fatal("flush failed:", err)
		}

		reloaded, err := storage.NewYAMLSheetHandler(filename).Properties()
		if err != nil {
			t.Fatal("reload failed:", err)
		}
		if !reloaded[0].Value().IsNull() {
			t.Error("unspecified state not persisted")
		}
	})

	t.Run("CommitUnknownProperty", func(t *testing.T) {
		h := storage.NewYAMLSheetHandler(writeTestSheet(t, testSheet))
		if _, err := h.Properties(); err != nil {
			t.Fatal("load failed:", err)
		}
		if err := h.CommitProperty(model.NewStringProperty("ghost", "Ghost", "")); err == nil {
			t.Error("commit of unknown property not rejected")
		}
	})
}
