// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/navigation"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

const maxNameWidth = 32

// renderScreen draws the menu, item table, prompt and notice of s above the
// text field.
func renderScreen(s navigation.Screen, inputView string) string {
	var b strings.Builder

	if s.Heading != "" {
		b.WriteString(headingStyle.Render(s.Heading))
		b.WriteString("\n\n")
	}

	for _, opt := range s.Options {
		fmt.Fprintf(&b, "%d. %s\n", opt.Number, opt.Label)
	}

	if s.ShowItems {
		b.WriteString("\n")
		if len(s.Items) == 0 {
			b.WriteString(app.MsgNoItems)
			b.WriteString("\n")
		} else {
			b.WriteString(renderItemsTable(s.Items, s.ItemsOffset))
			b.WriteString("\n")
		}
	}

	if len(s.Choices) > 0 {
		b.WriteString("\n")
		for i, c := range s.Choices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
	}

	if s.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(s.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(inputView)

	return renderPage(s.Title, b.String(), "enter: submit │ F1: about")
}

// renderItemsTable numbers rows from offset so they line up with the menu
// choices that select them.
func renderItemsTable(items []models.Item, offset int) string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(offset + i),
			fitText(item.Name, maxNameWidth),
			item.Category.String(),
			humanize.Comma(int64(item.Total())),
			humanize.Comma(int64(item.Quantity)),
			humanize.Comma(int64(item.DefectiveQuantity)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Category", "Total", "Working", "Defective").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	return t.Render()
}
