// Package ai runs the two LLM steps of the suggestion pipeline: text analysis,
// which turns a description into keywords, and name generation, which turns
// keywords into project name candidates.
package ai
