// Package fixtures embeds the recorded API interactions shared by the test
// suites. Cassettes live under cassettes/<resource>/<scenario>.json.
package fixtures
