package textseg_test

import (
	"fmt"

	"github.com/scalecode-solutions/textseg"
)

func ExampleGraphemeClusterCount() {
	n := textseg.GraphemeClusterCount("🇩🇪🏳️‍🌈")
	fmt.Println(n)
	// Output: 2
}

func ExampleFirstGraphemeCluster() {
	b := []byte("🇩🇪🏳️‍🌈!")
	state := -1
	var c []byte
	for len(b) > 0 {
		c, b, state = textseg.FirstGraphemeCluster(b, state)
		fmt.Println(string(c))
	}
	// Output: 🇩🇪
	//🏳️‍🌈
	//!
}

func ExampleFirstGraphemeClusterInString() {
	str := "🇩🇪🏳️‍🌈!"
	state := -1
	var c string
	for len(str) > 0 {
		c, str, state = textseg.FirstGraphemeClusterInString(str, state)
		fmt.Println(c)
	}
	// Output: 🇩🇪
	//🏳️‍🌈
	//!
}

func ExampleFirstWord() {
	b := []byte("Hello, world!")
	state := -1
	var c []byte
	for len(b) > 0 {
		c, b, state = textseg.FirstWord(b, state)
		fmt.Printf("(%s)\n", string(c))
	}
	// Output: (Hello)
	//(,)
	//( )
	//(world)
	//(!)
}

func ExampleFirstWordInString() {
	str := "Hello, world!"
	state := -1
	var c string
	for len(str) > 0 {
		c, str, state = textseg.FirstWordInString(str, state)
		fmt.Printf("(%s)\n", c)
	}
	// Output: (Hello)
	//(,)
	//( )
	//(world)
	//(!)
}

func ExampleGraphemes() {
	g := textseg.NewGraphemes("मनीष")
	for g.Next() {
		from, to := g.Positions()
		fmt.Printf("%d-%d %s\n", from, to, g.Str())
	}
	// Output: 0-3 म
	//3-9 नी
	//9-12 ष
}

func ExampleGraphemes_NextBack() {
	g := textseg.NewGraphemes("🇩🇪🇫🇷!")
	for g.NextBack() {
		fmt.Println(g.Str())
	}
	// Output: !
	//🇫🇷
	//🇩🇪
}

func ExampleWords() {
	w := textseg.NewWords("The quick brown fox")
	for w.Next() {
		fmt.Printf("(%s)\n", w.Str())
	}
	// Output: (The)
	//( )
	//(quick)
	//( )
	//(brown)
	//( )
	//(fox)
}

func ExampleUnicodeWords() {
	u := textseg.NewUnicodeWords("The quick (\"brown\") fox can't jump 32.3 feet, right?")
	for u.Next() {
		fmt.Printf("(%s)\n", u.Str())
	}
	// Output: (The)
	//(quick)
	//(brown)
	//(fox)
	//(can't)
	//(jump)
	//(32.3)
	//(feet)
	//(right)
}

func ExampleIsGraphemeBoundary() {
	str := "é!"
	for i := range str {
		if textseg.IsGraphemeBoundary(str, i) {
			fmt.Println(i)
		}
	}
	if textseg.IsGraphemeBoundary(str, len(str)) {
		fmt.Println(len(str))
	}
	// Output: 0
	//3
	//4
}

func ExampleNextWordBoundary() {
	str := "ab cd"
	offset := 0
	for offset >= 0 {
		fmt.Println(offset)
		offset = textseg.NextWordBoundary(str, offset)
	}
	// Output: 0
	//2
	//3
	//5
}
