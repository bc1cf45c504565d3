package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/gestures"
	"github.com/go-drift/mousearea/pkg/graphics"
	"github.com/go-drift/mousearea/pkg/theme"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/todo/v2\n\ngo 1.24\n")

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Title != "todo" {
		t.Errorf("Title = %q, want todo", res.Title)
	}
	if res.ModulePath != "example.com/acme/todo/v2" {
		t.Errorf("ModulePath = %q", res.ModulePath)
	}
	if res.Width != defaultWidth || res.Height != defaultHeight {
		t.Errorf("size = %dx%d", res.Width, res.Height)
	}
	if res.Brightness != theme.BrightnessLight {
		t.Errorf("Brightness = %v", res.Brightness)
	}
	if len(res.Areas) != 1 || res.Areas[0].ID != "demo" {
		t.Fatalf("Areas = %+v, want the demo area", res.Areas)
	}
	if res.Areas[0].Cursor != core.InteractionPointer {
		t.Errorf("Cursor = %v", res.Areas[0].Cursor)
	}
	if len(res.Script) != 0 {
		t.Errorf("Script = %v, want empty", res.Script)
	}
}

func TestResolve_NoModuleUsesDirName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "playground")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Title != "playground" {
		t.Errorf("Title = %q, want playground", res.Title)
	}
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
window:
  title: Todo
  width: 200
  height: 100
  theme: dark
areas:
  - id: row
    idle: {text: Buy milk, padding: 4}
    hovered: {background: "#EEEEEE"}
    pressed: {background: "#CCCCCC", text: Done}
    tooltip: mark as done
    cursor: pointer
script:
  - {phase: move, x: 5, y: 5}
  - {phase: down, x: 5, y: 5}
  - {phase: up, x: 5, y: 5, button: secondary}
  - {phase: cancel, device: touch}
  - {phase: exit, x: 1, y: 1}
`)

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Title != "Todo" || res.Width != 200 || res.Height != 100 {
		t.Errorf("window = %q %dx%d", res.Title, res.Width, res.Height)
	}
	if res.Brightness != theme.BrightnessDark {
		t.Errorf("Brightness = %v, want dark", res.Brightness)
	}

	area := res.Areas[0]
	want := Area{
		ID:      "row",
		Idle:    Look{Text: "Buy milk", Padding: 4},
		Hovered: Look{Text: "Buy milk", Padding: 4, Background: graphics.RGB(0xEE, 0xEE, 0xEE)},
		Pressed: Look{Text: "Done", Padding: 4, Background: graphics.RGB(0xCC, 0xCC, 0xCC)},
		Tooltip: "mark as done",
		Cursor:  core.InteractionPointer,
	}
	if area != want {
		t.Errorf("area =\n%+v\nwant\n%+v", area, want)
	}

	if len(res.Script) != 5 {
		t.Fatalf("len(Script) = %d, want 5", len(res.Script))
	}
	if e := res.Script[1]; e.Phase != gestures.PointerPhaseDown || e.Button != gestures.ButtonPrimary || e.Position != (graphics.Offset{X: 5, Y: 5}) {
		t.Errorf("Script[1] = %v", e)
	}
	if e := res.Script[2]; e.Button != gestures.ButtonSecondary {
		t.Errorf("Script[2].Button = %v", e.Button)
	}
	if e := res.Script[3]; e.Device != gestures.DeviceTouch || e.PointerID != 1 {
		t.Errorf("Script[3] = %+v", e)
	}
	if e := res.Script[4]; e.Position != graphics.Outside {
		t.Errorf("exit position = %v, want Outside", e.Position)
	}
}

func TestResolve_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "other.yaml", "areas:\n  - id: a\n    idle: {text: A}\n")
	res, err := Resolve(dir, filepath.Join(dir, "other.yaml"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Areas[0].ID != "a" {
		t.Errorf("Areas = %+v", res.Areas)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no areas", "areas: []\n", "at least one area"},
		{"missing id", "areas:\n  - idle: {text: A}\n", "id is required"},
		{"duplicate id", "areas:\n  - id: a\n  - id: a\n", "duplicate id"},
		{"bad color", "areas:\n  - id: a\n    idle: {background: red}\n", "invalid color"},
		{"negative padding", "areas:\n  - id: a\n    hovered: {padding: -1}\n", "negative"},
		{"bad cursor", "areas:\n  - id: a\n    cursor: hand\n", "unknown cursor"},
		{"bad theme", "window: {theme: sepia}\nareas:\n  - id: a\n", "window.theme"},
		{"negative size", "window: {width: -5}\nareas:\n  - id: a\n", "positive"},
		{"bad phase", "areas:\n  - id: a\nscript:\n  - {phase: hover}\n", "unknown phase"},
		{"bad device", "areas:\n  - id: a\nscript:\n  - {phase: down, device: pen}\n", "unknown device"},
		{"bad button", "areas:\n  - id: a\nscript:\n  - {phase: down, button: fourth}\n", "unknown button"},
		{"bad yaml", "areas: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			_, err := Resolve(dir, "")
			if err == nil {
				t.Fatalf("Resolve succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestArea_LookFor(t *testing.T) {
	area := Area{
		Idle:    Look{Text: "idle"},
		Hovered: Look{Text: "hovered"},
		Pressed: Look{Text: "pressed"},
	}
	tests := []struct {
		hovered, pressed bool
		want             string
	}{
		{false, false, "idle"},
		{true, false, "hovered"},
		{true, true, "pressed"},
		{false, true, "idle"},
	}
	for _, tt := range tests {
		if got := area.LookFor(tt.hovered, tt.pressed).Text; got != tt.want {
			t.Errorf("LookFor(%t, %t) = %q, want %q", tt.hovered, tt.pressed, got, tt.want)
		}
	}
}

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		modulePath string
		dir        string
		want       string
	}{
		{"github.com/acme/widgets", "/src/x", "widgets"},
		{"github.com/acme/widgets/v3", "/src/x", "widgets"},
		{"", "/src/sandbox", "sandbox"},
		{"", "/", "mousearea"},
	}
	for _, tt := range tests {
		if got := defaultTitle(tt.modulePath, tt.dir); got != tt.want {
			t.Errorf("defaultTitle(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
		}
	}
}
