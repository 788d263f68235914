// Package config loads readmegen's tool settings: output file, template
// source, recognized hosting domains, list collection policy and whether
// prompts are suppressed.
package config
