// Package pagemd scrapes a single web page: it fetches the page, isolates
// its main content region, converts that region to Markdown or cleaned HTML,
// and optionally relocates referenced images to local storage while
// rewriting their URLs to local paths.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package pagemd
