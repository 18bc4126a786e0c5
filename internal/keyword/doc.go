// Package keyword translates Korean promotional text into English image
// search keywords using a static bilingual dictionary with pattern-based
// fallbacks. Translation is pure and never fails: any input yields at
// least one usable search term. An optional OpenAI-backed refiner can
// improve the dictionary terms when an API key is configured.
package keyword
