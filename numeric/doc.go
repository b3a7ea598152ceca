// Package numeric holds small generic integer helpers: GCD, LCM, LCMAll and
// the overflow-aware CheckedLCM. Each is written once against
// constraints.Integer and instantiated for whatever width the caller uses.
package numeric
