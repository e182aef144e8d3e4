package ruleset

// Merge returns a new Fragment holding dst with src folded into it.
// Neither argument is modified.
//
// For each key of src: a key missing from dst is copied; two lists are
// concatenated with src items last; two mappings are merged one level deep,
// src keys replacing dst keys wholesale; any other pair takes the src value.
func Merge(dst, src Fragment) Fragment {
	out := make(Fragment, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		cur, ok := out[k]
		if !ok {
			out[k] = v
			continue
		}
		out[k] = mergeValue(cur, v)
	}
	return out
}

// MergeAll folds fragments left to right starting from an empty Fragment.
func MergeAll(fragments ...Fragment) Fragment {
	out := Fragment{}
	for _, f := range fragments {
		out = Merge(out, f)
	}
	return out
}

func mergeValue(cur, next any) any {
	switch c := cur.(type) {
	case []any:
		if n, ok := next.([]any); ok {
			joined := make([]any, 0, len(c)+len(n))
			joined = append(joined, c...)
			return append(joined, n...)
		}
	case map[string]any:
		if n, ok := next.(map[string]any); ok {
			joined := make(map[string]any, len(c)+len(n))
			for k, v := range c {
				joined[k] = v
			}
			for k, v := range n {
				joined[k] = v
			}
			return joined
		}
	}
	return next
}
