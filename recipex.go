// Package recipex extracts structured recipe data from saved HTML pages
// of recipe websites. Each supported site has a hand-written extractor
// behind a common interface; the shared core is a locale-driven ingredient
// line parser that turns free-text phrases like "250 g di pasta" into
// structured {name, amount, units} records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package recipex
