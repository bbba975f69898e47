package markup_test

import (
	"fmt"

	"github.com/matzehuels/stackbadge/pkg/markup"
)

func ExampleElement() {
	svg := markup.Element("svg", markup.Attrs{{Name: "width", Value: "90"}},
		markup.Element("title", nil, markup.Text("build: passing")),
	)
	fmt.Println(svg.Render())
	// Output: <svg width="90"><title>build: passing</title></svg>
}

func ExampleFragment() {
	stops := markup.Fragment(
		markup.New("stop").AddAttr("offset", "0"),
		markup.New("stop").AddAttr("offset", "1"),
	)
	fmt.Println(markup.Element("linearGradient", nil, stops).Render())
	// Output: <linearGradient><stop offset="0"/><stop offset="1"/></linearGradient>
}
