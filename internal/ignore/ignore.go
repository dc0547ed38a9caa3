// Package ignore resolves gitignore-style exclusion for paths met during a
// tree listing.
//
// Rules are kept in a chain of immutable nodes, one per directory being
// listed. Each node holds the rule-sets loaded for its own directory (the
// root node also holds every ancestor's rules plus the global excludes) and a
// pointer to its parent. A query walks the chain from the nearest node
// outwards and stops at the first rule-set with an opinion, so a whitelist
// (`!pattern`) close to the path beats an ignore rule further up.
package ignore

// DefaultFileName is the per-directory rule file.
const DefaultFileName = ".gitignore"
