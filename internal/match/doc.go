// Package match normalizes column and role identifiers and ranks
// near-miss spellings, so mapping files can say "fluxCol" or "FLUX-COL"
// and typos such as "flx_col" come with a suggestion.
package match
