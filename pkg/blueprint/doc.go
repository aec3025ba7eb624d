// Package blueprint loads starter form documents from JSON or YAML files. A
// file declares one or more forms under a top-level "forms" map:
//
//	forms:
//	  contact:
//	    name: Contact Us
//	    fontFamily: font-serif
//	    theme:
//	      button.backgroundColor: "#111827"
//	    fields:
//	      - type: text
//	        label: Full name
//	      - type: select
//	        label: Topic
//	        options: [Sales, Support]
//
// Documents are assembled with the document package so ids stay unique and
// every field starts required.
package blueprint
