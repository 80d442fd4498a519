// Package extract pulls plain text out of resume documents.
//
// PDF text is read page by page with MuPDF (go-fitz), DOCX text from the
// paragraphs of word/document.xml and .txt files are used as they are.
// Extraction never fails: unsupported or unreadable input yields "" and
// the problem is logged, leaving the caller to decide what an empty
// document means.
package extract
