package vdom

import "testing"

func TestRenderHTMLElement(t *testing.T) {
	n := Element("div", Text("hi")).WithProp("class", "box")

	got := RenderHTML(n)
	want := `<div class="box">hi</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	n := Element("span", Text("<b> & 'q'")).WithProp("title", `a"b`)

	got := RenderHTML(n)
	want := `<span title="a&#34;b">&lt;b&gt; &amp; &#39;q&#39;</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLFragmentAndVoid(t *testing.T) {
	n := Fragment(Element("br"), Text("x"))

	got := RenderHTML(n)
	want := `<br/>x`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLStableAttributeOrder(t *testing.T) {
	n := Element("div").WithProp("b", 2).WithProp("a", 1)

	got := RenderHTML(n)
	want := `<div a="1" b="2"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
