package vdom

import "testing"

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		key  string
		val  string
	}{
		{"AttrOf", AttrOf("role", "button"), "role", "button"},
		{"ID", ID("main"), "id", "main"},
		{"Class", Class("a", "b", "c"), "class", "a b c"},
		{"StyleAttr", StyleAttr("color:red"), "style", "color:red"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"Href", Href("/x"), "href", "/x"},
		{"Type", Type("text"), "type", "text"},
		{"D", D("M0 0"), "d", "M0 0"},
		{"Fill", Fill("red"), "fill", "red"},
		{"Cx", Cx(1.5), "cx", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key || tt.attr.Value != tt.val {
				t.Errorf("%s = %+v, want {%s %s}", tt.name, tt.attr, tt.key, tt.val)
			}
		})
	}
}

func TestProps(t *testing.T) {
	if p := Checked(true); p.Key != "checked" || p.Value != true {
		t.Errorf("Checked(true) = %+v", p)
	}
	if p := PropOf("scrollTop", 10); p.Key != "scrollTop" || p.Value != 10 {
		t.Errorf("PropOf() = %+v", p)
	}
}

func TestEventHelpers(t *testing.T) {
	tests := []struct {
		got  EventHandler
		want string
	}{
		{OnClick(nil), "click"},
		{OnInput(nil), "input"},
		{OnChange(nil), "change"},
		{OnSubmit(nil), "submit"},
		{On("keydown", nil), "keydown"},
	}
	for _, tt := range tests {
		if tt.got.Event != tt.want {
			t.Errorf("Event = %q, want %q", tt.got.Event, tt.want)
		}
	}
}
