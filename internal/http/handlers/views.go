package handlers

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	html "github.com/gofiber/template/html/v2"

	"platemarket/internal/domain"
)

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// NewViews builds the template engine with the helpers the pages use.
func NewViews(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("price", FormatPrice)
	engine.AddFunc("shortDate", ShortDate)
	engine.AddFunc("longDate", LongDate)
	engine.AddFunc("card", Card)
	return engine
}

// Card bundles what partials/card needs, since a template call takes one argument.
func Card(l domain.Listing, favorite bool, back, csrf string) map[string]any {
	return map[string]any{"L": l, "Favorite": favorite, "Back": back, "CSRFToken": csrf}
}

// FormatPrice groups thousands with a space: 150000 -> "150 000".
func FormatPrice(n int64) string {
	return humanize.FormatInteger("# ###.", int(n))
}

func ShortDate(t time.Time) string { return t.Format("02.01.2006") }

// LongDate renders "15 января 2024 г.".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), monthsGenitive[t.Month()-1], t.Year())
}
