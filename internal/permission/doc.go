// Package permission resolves the permission transfer mode used by export,
// import and external sync operations.
//
// A Mode accepts three spellings per constant: its own name (STORE_ELEMENT),
// the name of the matching remote constant (STORE_ELEMENT_PERMISSIONS) and
// that remote name without its _PERMISSIONS suffix. Matching ignores case
// and the separators '_' and '-', so "store-element" and "storeelement"
// both resolve to StoreElement.
package permission
