//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c, restricted to the versions
// whose character count fields are 9 bits alphanumeric and 8 bits byte

var capacity = []struct {
	name  string
	width int
	words int
	ec    [4]int
}{
	{"1", 21, 26, [4]int{7, 10, 13, 17}},
	{"2", 25, 44, [4]int{10, 16, 22, 28}},
	{"3", 29, 70, [4]int{15, 26, 36, 44}},
	{"4", 33, 100, [4]int{20, 36, 52, 64}},
	{"5", 37, 134, [4]int{26, 48, 72, 88}},
	{"6", 41, 172, [4]int{36, 64, 96, 112}},
	{"7", 45, 196, [4]int{40, 72, 108, 130}},
	{"8", 49, 242, [4]int{48, 88, 132, 156}},
	{"9", 53, 292, [4]int{60, 110, 160, 192}},
	{"M1", 11, 5, [4]int{2, 5, 5, 5}},
	{"M2", 13, 10, [4]int{5, 6, 10, 10}},
	{"M3", 15, 17, [4]int{6, 8, 17, 17}},
	{"M4", 17, 24, [4]int{8, 10, 14, 24}},
}

// Number of blocks in the two block groups.
var eccTable = [][4][2]int{
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // M1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // M4
}

// First and second alignment pattern position after 6.
var align = [][2]int{
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, // 6-9
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, // M1-M4
}

var versionPattern = []int{
	0, 0, 0, 0, 0, 0, 0x07c94, 0x085bc, 0x09a99,
	0, 0, 0, 0,
}

// positions returns the alignment pattern centre list for entry i.
func positions(i int) string {
	a := align[i]
	if a[0] == 0 {
		return "nil"
	}
	p := []string{"6"}
	for x := a[0]; x <= capacity[i].width-7; x += a[1] - a[0] {
		p = append(p, fmt.Sprint(x))
		if a[1] == 0 {
			break
		}
	}
	return "[]int{" + strings.Join(p, ", ") + "}"
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = map[Version]*version{
`)
	for i, c := range capacity {
		fmt.Fprintf(w, "\t%s: {%d, %s, %#x, map[Level]level{",
			c.name, c.words, positions(i), versionPattern[i])
		sep := ""
		for l := 0; l < 4; l++ {
			if c.words <= c.ec[l] {
				continue // no data capacity at this level
			}
			nb := eccTable[i][l][0] + eccTable[i][l][1]
			fmt.Fprintf(w, "%s%c: {%d, %d}", sep, "LMQH"[l],
				nb, c.ec[l]/nb)
			sep = ", "
		}
		fmt.Fprintln(w, "}},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
