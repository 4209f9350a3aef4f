package manifest

// Merge folds src into dst recursively.
//
// Scalars from src replace those in dst, nested objects are merged with src
// winning on collisions, and lists are concatenated with dst items first.
// Keys new to dst are appended in src order. src is not modified.
func Merge(dst, src *Object) {
	for _, k := range src.keys {
		sv := src.values[k]
		dv, exists := dst.values[k]
		if !exists {
			dst.Set(k, cloneValue(sv))
			continue
		}

		switch s := sv.(type) {
		case *Object:
			if d, ok := dv.(*Object); ok && d != nil {
				Merge(d, s)
				continue
			}
		case []any:
			if d, ok := dv.([]any); ok {
				merged := make([]any, 0, len(d)+len(s))
				merged = append(merged, d...)
				merged = append(merged, cloneValue(s).([]any)...)
				dst.Set(k, merged)
				continue
			}
		}
		dst.Set(k, cloneValue(sv))
	}
}
