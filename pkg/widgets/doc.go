// Package widgets provides the leaf and layout widgets content is built from.
//
// Widgets are plain values created with struct literals:
//
//	widgets.Container{
//	    Color:       graphics.RGB(0xEE, 0xEE, 0xEE),
//	    Padding:     graphics.EdgeInsetsAll(8),
//	    ChildWidget: widgets.Text{Content: "Hello"},
//	}
//
// Layout helpers cover the common cases:
//
//	row := widgets.RowOf(
//	    widgets.Text{Content: "Buy milk"},
//	    widgets.HSpace(8),
//	    widgets.Button{Label: "Done", OnPress: doneMsg},
//	)
//
// Container widgets visit their children, trees, and layout nodes together
// and stop at the shortest of the three, so a layout measured for a previous
// set of children is never indexed out of range.
package widgets
