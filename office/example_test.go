package office_test

import (
	"fmt"

	"github.com/lakret/gir/office"
)

func ExampleSearch() {
	out, err := office.Search(10, office.Pos{X: 1, Y: 1}, office.Pos{X: 7, Y: 4}, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", out.Steps())

	// Output:
	// steps: 11
}
