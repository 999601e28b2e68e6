// Package pageask provides the retrieval and answer-grounding core for an
// in-page help assistant. Given a natural language question, a snapshot of
// the page the user is viewing, and optionally a specific element they
// pointed at, it decides which documentation pages (if any) are relevant
// enough to cite, at what confidence, and which grounding policy the answer
// generator must follow.
//
// This package contains domain types, heuristics, and interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/) or their function (search/, assist/).
package pageask
