// Package loadunit provides the LoadUnit aggregate: a physical area on a
// transport unit used to separate goods. Load units carry a product, can be
// locked for allocation, and never exist without their transport unit.
package loadunit
