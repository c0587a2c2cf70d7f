// Package mnoda provides the in-memory object model and JSON encoding for
// the Mnoda schema: documents describing simulation records and the
// relationships between them, as consumed by the Sina tool.
//
// A Document aggregates Records (type-tagged entities carrying data,
// file references and arbitrary user-defined content) and Relationships
// (subject–predicate–object triples linking record identities).
//
// # Quick Start
//
// Assemble a document programmatically:
//
//	task := mnoda.NewID("Task_22", mnoda.IDTypeGlobal)
//	run := mnoda.NewRun(mnoda.NewLocalID(), "My Sim Code", "1.2.3", "jdoe")
//
//	doc := mnoda.NewDocument()
//	doc.AddRecord(run)
//	doc.AddRelationship(mnoda.NewRelationship(task, "contains", run.ID()))
//
//	out, _ := json.Marshal(doc)
//
// Decode existing JSON, dispatching record types through a loader:
//
//	doc, err := mnoda.DecodeDocument(data, mnoda.DefaultRecordLoader())
//
// # Extending the record family
//
// New record subtypes embed BaseRecord, delegate the common fields to it,
// and register a factory under their type tag:
//
//	loader := mnoda.DefaultRecordLoader()
//	loader.AddTypeLoader("msub", decodeMsub)
//
// Unknown type tags are never an error; they decode as plain BaseRecords,
// so documents written by newer tools remain readable.
//
// File-system load and save live in the docstore subpackage; codec
// selection for persistence lives in the codec subpackage.
package mnoda
