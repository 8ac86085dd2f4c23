package jsonval

// FindSuccessRecord searches a JSON value depth-first, pre-order, for the
// first object with a boolean member "success" equal to true and at least
// one of "schoolRank" or "schoolSignupCount". A matching object is
// returned as-is; its own members are never searched for a nested match.
// Object members are visited in document order, so ties resolve to the
// record encountered first.
func FindSuccessRecord(v Value) (Object, bool) {
	switch v.Kind {
	case KindArray:
		return FindSuccessRecordIn(v.Arr)
	case KindObject:
		if isSuccessRecord(v.Obj) {
			return v.Obj, true
		}
		for _, m := range v.Obj {
			if rec, ok := FindSuccessRecord(m.Value); ok {
				return rec, true
			}
		}
	}
	return nil, false
}

// FindSuccessRecordIn searches a sequence of top-level values (typically
// the parsed lines of a JSONL body) in order, returning the first match.
func FindSuccessRecordIn(values []Value) (Object, bool) {
	for _, v := range values {
		if rec, ok := FindSuccessRecord(v); ok {
			return rec, true
		}
	}
	return nil, false
}

func isSuccessRecord(obj Object) bool {
	success, ok := obj.Get("success")
	if !ok || success.Kind != KindBool || !success.Bool {
		return false
	}
	return obj.Has("schoolRank") || obj.Has("schoolSignupCount")
}
