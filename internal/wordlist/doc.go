// Package wordlist loads dictionary word lists and tracks the one-shot load
// lifecycle of the interactive lookup.
//
// A source is a file path or an http(s) URL. The format follows the URL
// scheme or the file extension:
//
//	http://, https://   JSON array fetched over HTTP
//	.json               JSON array of {"word", "pos", "definition"} records
//	.msgpack, .mpk      msgpack array of maps with the same keys
//	.xlsx               first sheet, header row naming the columns
//	.html, .htm         first <table> whose header names a word column
//	.db, .sqlite        database written by `bmd import`
//
// Records whose word is missing or not a string are dropped. A non-string
// pos or definition reads as "".
package wordlist
