// Package exporter materializes aggregated release totals into an output
// workbook.
//
// AssembleRows produces the ordered row sequence of one output sheet: the
// header lines verbatim, then one row per release in the totals' insertion
// order. WorkbookBuilder appends assembled sheets to an excelize workbook
// and saves it, removing the default sheet a fresh workbook starts with.
// The builder appends rows strictly in the order given and makes no other
// assumption about the data.
package exporter
