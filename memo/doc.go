// Package memo provides memoizing wrappers for methods.
//
// Each wrapper belongs to one instance: the owning type builds it in its
// constructor around one of its own methods and calls through it.
//
//	type Mesh struct {
//	    area *memo.CachedMethod[int, float64]
//	}
//
//	func NewMesh() *Mesh {
//	    m := &Mesh{}
//	    m.area = memo.NewCachedMethod(m.computeArea)
//	    return m
//	}
//
//	func (m *Mesh) Area(lod int) (float64, error) { return m.area.Call(lod) }
//
// Three policies are available:
//
//   - CachedMethod keeps every result by argument key until invalidated.
//   - LastResultCachedMethod keeps only the most recent result.
//   - AttributeBasedCachedMethod keys results on the owner's own fields.
//
// Errors returned by the wrapped function are never cached. Wrappers guard
// their storage with a mutex that is not held while the wrapped function
// runs, so concurrent misses for the same key may compute more than once.
package memo
