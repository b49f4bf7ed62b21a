// Package render produces document bodies from resolved entities.
//
// Templates are html/template files embedded in the binary (culture,
// country, province, burg). Each receives a Context with the entity as Iter
// and collection-wide data as Extras. A directory with the same four files
// can replace the embedded set.
package render
