// Package documents renders person lists as CSV, Excel and PDF files and
// reads country names out of uploaded Excel workbooks.
package documents
