// Package immutable wraps mutable record types in immutable values.
//
// An Immutable[T] owns one private instance of T. Reading goes through a projection;
// modifying returns a new wrapper that owns a fresh clone, so the original is never
// touched:
//
//	p, _ := immutable.New[Person]()
//	p2, err := immutable.Modify(p, immutable.Member("Name"), "Ada")
//	name := immutable.Get(p2, func(p Person) string { return p.Name }) // "Ada"
//
// The operations behind these calls (creation, clone, member accessors, serialization)
// are built once per type by a delegate.Builder and cached in the type's
// delegate.Cache. By default the cache comes from delegate.Default() and the builder is
// whatever was registered for T there, or a reflective builder for plain structs.
//
// Wrappers plug into gopkg.in/yaml.v3 and encoding/json: an Immutable[T] marshals as the
// mapping of its serialized members and unmarshals by building a default instance and
// populating it.
package immutable
