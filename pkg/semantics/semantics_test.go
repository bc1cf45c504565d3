package semantics

import (
	"reflect"
	"testing"

	"github.com/go-drift/mousearea/pkg/graphics"
)

func TestCollectorBuildsTree(t *testing.T) {
	c := NewCollector(graphics.RectFromLTWH(0, 0, 100, 100))
	c.Container("row", graphics.RectFromLTWH(0, 0, 100, 20), func(op Operation) {
		op.Text("", graphics.RectFromLTWH(0, 0, 40, 13), "Buy milk")
		op.Semantics(graphics.RectFromLTWH(50, 0, 30, 20), SemanticsConfiguration{Role: SemanticsRoleButton, Label: "Done"})
	})

	root := c.Root()
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	row := root.Children[0]
	if row.Config.Label != "row" || len(row.Children) != 2 {
		t.Fatalf("unexpected row node: %+v", row)
	}
	button := row.Children[1]
	if !button.Config.Flags.Has(SemanticsIsFocusable) {
		t.Error("button with a label should be focusable")
	}
	if got, want := root.Labels(), []string{"row", "Buy milk", "Done"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestCollectorCollapsesAnonymousGroups(t *testing.T) {
	c := NewCollector(graphics.Rect{})
	c.Container("", graphics.Rect{}, func(op Operation) {
		op.Text("", graphics.Rect{}, "only")
	})
	root := c.Root()
	if len(root.Children) != 1 || root.Children[0].Config.Role != SemanticsRoleText {
		t.Fatalf("expected anonymous group to collapse into its text child, got %s", root)
	}
}

func TestCollectorSkipsEmpty(t *testing.T) {
	c := NewCollector(graphics.Rect{})
	c.Text("", graphics.Rect{}, "")
	c.Semantics(graphics.Rect{}, SemanticsConfiguration{})
	if n := len(c.Root().Children); n != 0 {
		t.Errorf("expected empty reports to be skipped, got %d children", n)
	}
}

func TestNodeString(t *testing.T) {
	n := &SemanticsNode{
		Config: SemanticsConfiguration{Role: SemanticsRoleGroup},
		Children: []*SemanticsNode{
			{Config: SemanticsConfiguration{Role: SemanticsRoleButton, Label: "Go", Flags: SemanticsIsPressed}},
		},
	}
	want := "group\n  button \"Go\" pressed\n"
	if got := n.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
