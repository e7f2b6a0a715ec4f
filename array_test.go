package dataobj_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/dataobj"
	"github.com/comalice/dataobj/testutil"
)

// mutators runs every array operation once against key.
var mutators = map[string]func(h dataobj.Host, key string) error{
	"push": func(h dataobj.Host, key string) error {
		return dataobj.ArrayPush(h, key, "v")
	},
	"pushUnique": func(h dataobj.Host, key string) error {
		return dataobj.ArrayPushUnique(h, key, "v", nil)
	},
	"insertUnique": func(h dataobj.Host, key string) error {
		return dataobj.ArrayInsertUnique(h, key, 0, "v", nil)
	},
	"remove": func(h dataobj.Host, key string) error {
		return dataobj.ArrayRemove(h, key, "v", nil)
	},
	"pop": func(h dataobj.Host, key string) error {
		_, _, err := dataobj.ArrayPop(h, key)
		return err
	},
	"indexOf": func(h dataobj.Host, key string) error {
		_, err := dataobj.IndexOf(h, key, "v", nil)
		return err
	},
}

func TestGuardInitializesAbsentKey(t *testing.T) {
	for name, run := range mutators {
		t.Run(name, func(t *testing.T) {
			h := testutil.NewRecordingHost()
			require.NoError(t, run(h, "k"))

			v, ok := h.Get("k")
			require.True(t, ok, "key should be initialized")
			_, isArr := v.([]any)
			assert.True(t, isArr, "key should hold []any, got %T", v)
		})
	}
}

func TestGuardTreatsNilAsAbsent(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = nil

	require.NoError(t, dataobj.ArrayPush(h, "k", 1))
	assert.Equal(t, []any{1}, h.Array("k"))
}

func TestGuardRejectsNonArray(t *testing.T) {
	stored := []any{"text", 42, map[string]any{"a": 1}, []string{"typed"}}

	for name, run := range mutators {
		for _, v := range stored {
			h := testutil.NewRecordingHost()
			h.Data["k"] = v
			h.Reset()

			err := run(h, "k")
			require.Error(t, err, "%s with %T", name, v)
			assert.True(t, errors.Is(err, dataobj.ErrTypeMismatch))

			var tm *dataobj.TypeMismatchError
			require.True(t, errors.As(err, &tm))
			assert.Equal(t, "k", tm.Key)
			assert.Contains(t, err.Error(), `"k"`)

			assert.Empty(t, h.Emissions, "%s must not emit on mismatch", name)
			assert.Zero(t, h.Sets, "%s must not write on mismatch", name)
		}
	}
}

func TestArrayPushAlwaysAppends(t *testing.T) {
	h := testutil.NewRecordingHost()

	require.NoError(t, dataobj.ArrayPush(h, "k", "a"))
	require.NoError(t, dataobj.ArrayPush(h, "k", "a"))

	assert.Equal(t, []any{"a", "a"}, h.Array("k"))
	require.Len(t, h.Emissions, 4)
	assert.Equal(t, []string{"change", "change:k", "change", "change:k"}, h.Names())

	ev := h.Emissions[2].Event
	assert.Equal(t, dataobj.ChangeEvent{
		Key:      "k",
		OldValue: []any{"a"},
		NewValue: []any{"a", "a"},
		Kind:     dataobj.KindAdd,
		Item:     "a",
		Index:    1,
	}, ev)
	assert.Equal(t, h.Emissions[2].Event, h.Emissions[3].Event, "both emissions carry the same payload")
}

func TestArrayPushUniqueIsIdempotent(t *testing.T) {
	h := testutil.NewRecordingHost()

	require.NoError(t, dataobj.ArrayPushUnique(h, "k", "v", nil))
	require.NoError(t, dataobj.ArrayPushUnique(h, "k", "v", nil))

	assert.Equal(t, []any{"v"}, h.Array("k"))
	assert.Len(t, h.Emissions, 2)
}

func TestArrayPushUniqueDistinctEmptySlices(t *testing.T) {
	h := testutil.NewRecordingHost()

	require.NoError(t, dataobj.ArrayPushUnique(h, "k", []int{}, nil))
	require.NoError(t, dataobj.ArrayPushUnique(h, "k", []int{}, nil))

	assert.Len(t, h.Array("k"), 2)
	assert.Len(t, h.Emissions, 4)
}

func TestArrayPushUniqueCustomPredicate(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["users"] = []any{
		map[string]any{"id": 1, "name": "ann"},
	}

	byID := func(id int) dataobj.Predicate {
		return func(item any) bool {
			m, ok := item.(map[string]any)
			return ok && m["id"] == id
		}
	}

	require.NoError(t, dataobj.ArrayPushUnique(h, "users", map[string]any{"id": 1, "name": "other"}, byID(1)))
	assert.Len(t, h.Array("users"), 1)
	assert.Empty(t, h.Emissions)

	require.NoError(t, dataobj.ArrayPushUnique(h, "users", map[string]any{"id": 2}, byID(2)))
	assert.Len(t, h.Array("users"), 2)
	assert.Len(t, h.Emissions, 2)
}

func TestArrayInsertUniqueAtZeroWithExistingHead(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = []any{"head"}

	require.NoError(t, dataobj.ArrayInsertUnique(h, "k", 0, "new", nil))

	assert.Equal(t, []any{"new", "head"}, h.Array("k"))
	require.Len(t, h.Emissions, 2)
	assert.Equal(t, 0, h.Emissions[0].Event.Index)
	assert.Equal(t, "new", h.Emissions[0].Event.Item)
}

func TestArrayInsertUniqueSkipsValueFoundAtZero(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = []any{"x", "y"}

	require.NoError(t, dataobj.ArrayInsertUnique(h, "k", 1, "x", nil))

	assert.Equal(t, []any{"x", "y"}, h.Array("k"))
	assert.Empty(t, h.Emissions)
}

func TestArrayInsertUniqueIndexBounds(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []any
	}{
		{"middle", 1, []any{"a", "n", "b", "c"}},
		{"end", 3, []any{"a", "b", "c", "n"}},
		{"past end", 10, []any{"a", "b", "c", "n"}},
		{"negative", -1, []any{"a", "b", "n", "c"}},
		{"negative clamped", -10, []any{"n", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutil.NewRecordingHost()
			h.Data["k"] = []any{"a", "b", "c"}

			require.NoError(t, dataobj.ArrayInsertUnique(h, "k", tt.index, "n", nil))
			assert.Equal(t, tt.want, h.Array("k"))
			require.Len(t, h.Emissions, 2)
			assert.Equal(t, tt.index, h.Emissions[0].Event.Index, "event reports the requested index")
		})
	}
}

func TestArrayRemoveAbsentIsNoop(t *testing.T) {
	h := testutil.NewRecordingHost()
	shared := []any{1}
	h.Data["k"] = []any{"a", shared, "b"}

	require.NoError(t, dataobj.ArrayRemove(h, "k", "z", nil))

	arr := h.Array("k")
	require.Len(t, arr, 3)
	assert.Equal(t, "a", arr[0])
	assert.True(t, dataobj.Identical(shared, arr[1]), "untouched elements keep their identity")
	assert.Equal(t, "b", arr[2])
	assert.Empty(t, h.Emissions)
}

func TestArrayRemoveFirstMatchOnly(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = []any{"a", "b", "a"}

	require.NoError(t, dataobj.ArrayRemove(h, "k", "a", nil))

	assert.Equal(t, []any{"b", "a"}, h.Array("k"))
	require.Len(t, h.Emissions, 2)
	ev := h.Emissions[0].Event
	assert.Equal(t, dataobj.KindRemove, ev.Kind)
	assert.Equal(t, "a", ev.Item)
	assert.Equal(t, 0, ev.Index)
	assert.Equal(t, []any{"a", "b", "a"}, ev.OldValue)
	assert.Equal(t, []any{"b", "a"}, ev.NewValue)
}

func TestArrayRemoveReportsMatchedElement(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = []any{map[string]any{"id": 7}}

	err := dataobj.ArrayRemove(h, "k", nil, func(item any) bool {
		m, ok := item.(map[string]any)
		return ok && m["id"] == 7
	})
	require.NoError(t, err)

	assert.Empty(t, h.Array("k"))
	require.Len(t, h.Emissions, 2)
	assert.Equal(t, map[string]any{"id": 7}, h.Emissions[0].Event.Item)
}

func TestArrayPop(t *testing.T) {
	h := testutil.NewRecordingHost()

	item, ok, err := dataobj.ArrayPop(h, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, item)
	assert.Empty(t, h.Emissions, "empty pop emits nothing")

	h.Data["k"] = []any{"a", "b"}
	item, ok, err = dataobj.ArrayPop(h, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", item)
	assert.Equal(t, []any{"a"}, h.Array("k"))

	require.Len(t, h.Emissions, 2)
	ev := h.Emissions[0].Event
	assert.Equal(t, dataobj.KindRemove, ev.Kind)
	assert.Equal(t, 1, ev.Index)
	assert.Equal(t, "b", ev.Item)
}

func TestIndexOf(t *testing.T) {
	h := testutil.NewRecordingHost()
	h.Data["k"] = []any{"a", "b"}

	i, err := dataobj.IndexOf(h, "k", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = dataobj.IndexOf(h, "k", "a", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = dataobj.IndexOf(h, "k", "z", nil)
	require.NoError(t, err)
	assert.Equal(t, dataobj.NotFound, i)
	assert.Empty(t, h.Emissions)
}

func TestEventSnapshotsAreIndependent(t *testing.T) {
	obj := dataobj.NewObject()

	obj.On(dataobj.EventChange, func(ev dataobj.ChangeEvent) {
		ev.NewValue[0] = "tampered"
		ev.OldValue = append(ev.OldValue, "tampered")
	})

	require.NoError(t, obj.ArrayPush("k", "x"))

	got, _ := obj.Get("k")
	assert.Equal(t, []any{"x"}, got)
}

func TestTagsScenario(t *testing.T) {
	obj := dataobj.NewObject()

	var global, scoped []dataobj.ChangeEvent
	obj.On(dataobj.EventChange, func(ev dataobj.ChangeEvent) { global = append(global, ev) })
	obj.On(dataobj.ChangeEventName("tags"), func(ev dataobj.ChangeEvent) { scoped = append(scoped, ev) })

	tags := func() []any {
		v, _ := obj.Get("tags")
		return v.([]any)
	}

	require.NoError(t, obj.ArrayPushUnique("tags", "x", nil))
	assert.Equal(t, []any{"x"}, tags())
	require.Len(t, global, 1)
	assert.Equal(t, dataobj.KindAdd, global[0].Kind)
	assert.Equal(t, "x", global[0].Item)
	assert.Equal(t, 0, global[0].Index)

	require.NoError(t, obj.ArrayPushUnique("tags", "x", nil))
	assert.Equal(t, []any{"x"}, tags())
	assert.Len(t, global, 1)

	require.NoError(t, obj.ArrayInsertUnique("tags", 0, "y", nil))
	assert.Equal(t, []any{"y", "x"}, tags())
	require.Len(t, global, 2)
	assert.Equal(t, "y", global[1].Item)
	assert.Equal(t, 0, global[1].Index)

	require.NoError(t, obj.ArrayRemove("tags", "x", nil))
	assert.Equal(t, []any{"y"}, tags())
	require.Len(t, global, 3)
	assert.Equal(t, dataobj.KindRemove, global[2].Kind)
	assert.Equal(t, "x", global[2].Item)
	assert.Equal(t, 1, global[2].Index)

	assert.Equal(t, global, scoped)
}
