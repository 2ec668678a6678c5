package command

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kdriscoll/driftline/internal/input"
)

func TestDefaultBindings(t *testing.T) {
	km := NewKeymap()

	tests := []struct {
		key  input.Key
		mods input.Modifier
		want Command
	}{
		{input.KeyEscape, input.ModNone, Menu},
		{input.KeyEnter, input.ModNone, Select},
		{input.Key('s'), input.ModCtrl, Save},
		{input.Key('q'), input.ModCtrl, Quit},
		{input.Key('x'), input.ModNone, None},
		{input.KeyEscape, input.ModCtrl, None},
	}

	for _, tt := range tests {
		if got := km.Command(tt.key, tt.mods); got != tt.want {
			t.Errorf("Command(%v,%v) = %v, want %v", tt.key, tt.mods, got, tt.want)
		}
	}
}

func TestDefaultGestures(t *testing.T) {
	km := NewKeymap()

	if got := km.GestureCommand(input.GestureSwipeLeft); got != Back {
		t.Errorf("GestureCommand(swipe-left) = %v, want Back", got)
	}
	if got := km.GestureCommand(input.GestureSwipeDown); got != None {
		t.Errorf("GestureCommand(swipe-down) = %v, want None", got)
	}
}

func TestBindOverrides(t *testing.T) {
	km := NewKeymap()
	km.Bind(input.KeyEscape, input.ModNone, Quit)

	if got := km.Command(input.KeyEscape, input.ModNone); got != Quit {
		t.Errorf("Command(escape) = %v after rebind, want Quit", got)
	}
}

func TestShiftedRuneFallsBack(t *testing.T) {
	km := NewKeymap()
	km.Bind(input.Key('z'), input.ModNone, Help)

	if got := km.Command(input.Key('z'), input.ModShift); got != Help {
		t.Errorf("shifted rune = %v, want the unshifted binding", got)
	}
	// Non-rune keys do not fall back.
	if got := km.Command(input.KeyEscape, input.ModShift); got != None {
		t.Errorf("shift+escape = %v, want None", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	km := NewKeymap()

	data := []byte(`
[bindings]
"m" = "menu"
"ctrl+shift+q" = "quit"

[gestures]
"swipe-up" = "help"
`)
	if err := km.Load(data); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := km.Command(input.Key('m'), input.ModNone); got != Menu {
		t.Errorf("overlay binding = %v, want Menu", got)
	}
	if got := km.Command(input.Key('q'), input.ModCtrl.With(input.ModShift)); got != Quit {
		t.Errorf("overlay chord binding = %v, want Quit", got)
	}
	if got := km.GestureCommand(input.GestureSwipeUp); got != Help {
		t.Errorf("overlay gesture = %v, want Help", got)
	}
	// Defaults survive underneath the overlay.
	if got := km.Command(input.KeyEscape, input.ModNone); got != Menu {
		t.Errorf("default binding lost after overlay: %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "bad chord",
			data: "[bindings]\n\"ctrl+\" = \"menu\"\n",
			want: ErrBadChord,
		},
		{
			name: "bad command",
			data: "[bindings]\n\"m\" = \"launch\"\n",
			want: ErrBadCommand,
		},
		{
			name: "bad gesture",
			data: "[gestures]\n\"wobble\" = \"menu\"\n",
			want: ErrBadGesture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeymap()
			err := km.Load([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
			// A failed load must not clobber the working bindings.
			if got := km.Command(input.KeyEscape, input.ModNone); got != Menu {
				t.Errorf("bindings lost after failed load: %v", got)
			}
		})
	}
}

func TestLoadFileMissingIsNoop(t *testing.T) {
	km := NewKeymap()
	if err := km.LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Errorf("LoadFile(missing) error = %v, want nil", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")
	if err := os.WriteFile(path, []byte("[bindings]\n\"f5\" = \"save\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	km := NewKeymap()
	if err := km.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := km.Command(input.KeyF5, input.ModNone); got != Save {
		t.Errorf("file binding = %v, want Save", got)
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		in       string
		wantKey  input.Key
		wantMods input.Modifier
		wantErr  bool
	}{
		{"a", input.Key('a'), input.ModNone, false},
		{"ctrl+s", input.Key('s'), input.ModCtrl, false},
		{"ctrl+shift+p", input.Key('p'), input.ModCtrl.With(input.ModShift), false},
		{"escape", input.KeyEscape, input.ModNone, false},
		{"meta+enter", input.KeyEnter, input.ModMeta, false},
		{"banana+s", 0, 0, true},
		{"ctrl+", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, mods, err := ParseChord(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChord(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if key != tt.wantKey || mods != tt.wantMods {
				t.Errorf("ParseChord(%q) = (%v,%v), want (%v,%v)", tt.in, key, mods, tt.wantKey, tt.wantMods)
			}
		})
	}
}
