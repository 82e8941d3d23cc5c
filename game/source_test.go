package game

// scriptedSource replays fixed Intn results, cycling when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// rolls scripts die faces in [1, DieFaces], attacker first.
func rolls(faces ...int) *scriptedSource {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return &scriptedSource{values: values}
}

func mustMap(territories ...Territory) *Map {
	m, err := NewMapFrom(territories)
	if err != nil {
		panic(err)
	}
	return m
}
