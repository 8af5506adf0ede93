// Package names understands person names: it splits them into surname and
// firstname readings, relates diminutives through a variant dictionary,
// evaluates how two name parts match, and pulls concatenated tokens apart
// into roster surname/firstname pairs.
package names
