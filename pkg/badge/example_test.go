package badge_test

import (
	"fmt"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/fonts"
)

func ExampleRenderer_Render() {
	reg := fonts.NewRegistry()
	for _, name := range []string{fonts.VerdanaNormal11, fonts.VerdanaNormal10, fonts.VerdanaBold10, fonts.HelveticaBold11} {
		f, _ := fonts.New([]fonts.Range{{Low: 32, High: 126, Width: 7}}, 11)
		reg.MustRegister(name, f)
	}
	r, err := badge.NewRenderer(reg)
	if err != nil {
		panic(err)
	}

	svg, err := r.Render(badge.Badge{Label: "build", Message: "passing", Style: badge.FlatSquare})
	if err != nil {
		panic(err)
	}
	width := svg.Attrs[2]
	fmt.Println(svg.Name, width.Name, width.Value)
	// Output: svg width 104
}

func ExampleParseStyle() {
	s, err := badge.ParseStyle("for-the-badge")
	if err != nil {
		panic(err)
	}
	fmt.Println(s == badge.ForTheBadge, s)
	// Output: true for-the-badge
}
