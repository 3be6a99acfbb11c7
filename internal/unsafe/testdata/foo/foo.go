package foo

type S struct {
	A int // exported
	b int // unexported

	tags map[string]string
	err  error
}

func NewS(a, b int) S {
	return S{A: a, b: b, tags: map[string]string{"k": "v"}}
}

func NewFailing(err error) S {
	return S{err: err}
}

func (s S) GetB() int {
	return s.b
}
