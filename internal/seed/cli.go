package seed

import "os"

// ShowHelp prints usage information for the seed-workbook tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Lineout Seed Workbook
=====================

Generates a demo attendance workbook with a roster, a manual attendance log,
form responses and an injury sheet.

Usage:
  go run ./cmd/seed-workbook [options]

Options:
  -out string
        Output xlsx file (default "lineout.xlsx")
  -players int
        Roster size, at most 500 (default 40)
  -sessions int
        Number of training sessions (default 24)
  -seed uint
        Random seed (default 1)
  -end string
        Day of the last session, YYYY-MM-DD or DD/MM/YYYY (default today).
        The same -seed and -end produce the same workbook
  -help
        Show this help message

Examples:
  go run ./cmd/seed-workbook -out demo.xlsx
  go run ./cmd/seed-workbook -players 60 -sessions 40 -seed 7 -end 2026-03-14
`)
}
