package view

import "strings"

type ListRenderInput struct {
	Total  int
	Start  int
	End    int
	Cursor int

	RenderLine func(index int, active bool) string
}

func RenderListBody(in ListRenderInput) string {
	if in.Total == 0 || in.Start >= in.End || in.Start < 0 {
		return ""
	}
	end := in.End
	if end > in.Total {
		end = in.Total
	}
	var b strings.Builder
	for i := in.Start; i < end; i++ {
		b.WriteString(in.RenderLine(i, i == in.Cursor))
		b.WriteString("\n")
	}
	return b.String()
}
