package hull

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectVertexList(l *vertexList) []int {
	var out []int
	for v := l.first(); v != nil; v = v.next {
		out = append(out, v.index)
	}
	return out
}

func TestVertexListAddAndDelete(t *testing.T) {
	var l vertexList
	require.True(t, l.isEmpty())

	v0 := newVertex(0, NewVec3(0, 0, 0))
	v1 := newVertex(1, NewVec3(1, 0, 0))
	v2 := newVertex(2, NewVec3(2, 0, 0))

	l.add(v0)
	l.add(v1)
	l.add(v2)
	require.False(t, l.isEmpty())
	require.Equal(t, []int{0, 1, 2}, collectVertexList(&l))

	l.delete(v1)
	require.Equal(t, []int{0, 2}, collectVertexList(&l))
	require.Equal(t, v2, l.tail)

	l.delete(v0)
	require.Equal(t, []int{2}, collectVertexList(&l))
	require.Equal(t, v2, l.head)

	l.delete(v2)
	require.True(t, l.isEmpty())
}

func TestVertexListInsertBefore(t *testing.T) {
	var l vertexList
	v0 := newVertex(0, NewVec3(0, 0, 0))
	v2 := newVertex(2, NewVec3(2, 0, 0))
	l.add(v0)
	l.add(v2)

	v1 := newVertex(1, NewVec3(1, 0, 0))
	l.insertBefore(v1, v2)
	require.Equal(t, []int{0, 1, 2}, collectVertexList(&l))

	v := newVertex(-1, NewVec3(-1, 0, 0))
	l.insertBefore(v, v0)
	require.Equal(t, []int{-1, 0, 1, 2}, collectVertexList(&l))
	require.Equal(t, v, l.head)
}

func TestVertexListDeleteRange(t *testing.T) {
	var l vertexList
	vs := make([]*vertex, 5)
	for i := range vs {
		vs[i] = newVertex(i, NewVec3(float64(i), 0, 0))
		l.add(vs[i])
	}
	l.deleteRange(vs[1], vs[3])
	require.Equal(t, []int{0, 4}, collectVertexList(&l))
}

func TestVertexListAddAllSplicesExternalChain(t *testing.T) {
	var l vertexList
	v0 := newVertex(0, NewVec3(0, 0, 0))
	l.add(v0)

	v1 := newVertex(1, NewVec3(1, 0, 0))
	v2 := newVertex(2, NewVec3(2, 0, 0))
	v1.next = v2
	v2.prev = v1

	l.addAll(v1)
	require.Equal(t, []int{0, 1, 2}, collectVertexList(&l))
	require.Equal(t, v2, l.tail)
}

func TestVertexListClear(t *testing.T) {
	var l vertexList
	l.add(newVertex(0, NewVec3(0, 0, 0)))
	l.clear()
	require.True(t, l.isEmpty())
	require.Nil(t, l.head)
	require.Nil(t, l.tail)
}
