package journal

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
	"vincit.fi/image-resizer/api/apitype"
)

func initSUT(t *testing.T) *Store {
	database, err := NewInMemoryDatabase()
	require.Nil(t, err)
	sut := NewStore(database)
	t.Cleanup(sut.Close)
	return sut
}

func newResult(requestId string, path string, resized bool) *apitype.ResizeResult {
	target := apitype.SizeOf(640, 480)
	if resized {
		target = apitype.SizeOf(320, 240)
	}
	return &apitype.ResizeResult{
		RequestId:    requestId,
		Path:         path,
		Format:       apitype.JPEG,
		OriginalSize: apitype.SizeOf(640, 480),
		TargetSize:   target,
		Resized:      resized,
		BytesBefore:  2000,
		BytesAfter:   1000,
		Duration:     15 * time.Millisecond,
		Timestamp:    time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_Record(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	sut := initSUT(t)

	r.Nil(sut.Record(newResult("id-1", "/tmp/a.jpg", true)))

	result, err := sut.FindByRequestId("id-1")
	r.Nil(err)
	a.Equal("id-1", result.RequestId)
	a.Equal("/tmp/a.jpg", result.Path)
	a.Equal(apitype.JPEG, result.Format)
	a.Equal(apitype.SizeOf(640, 480), result.OriginalSize)
	a.Equal(apitype.SizeOf(320, 240), result.TargetSize)
	a.True(result.Resized)
	a.Equal(int64(2000), result.BytesBefore)
	a.Equal(int64(1000), result.BytesAfter)
	a.Equal(15*time.Millisecond, result.Duration)
	a.WithinDuration(time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC), result.Timestamp, time.Second)
}

func TestStore_Record_Nil(t *testing.T) {
	a := assert.New(t)
	sut := initSUT(t)

	a.NotNil(sut.Record(nil))
	count, err := sut.Count()
	a.Nil(err)
	a.Equal(uint64(0), count)
}

func TestStore_Record_DuplicateRequestId(t *testing.T) {
	a := assert.New(t)
	sut := initSUT(t)

	a.Nil(sut.Record(newResult("id-1", "/tmp/a.jpg", true)))
	a.NotNil(sut.Record(newResult("id-1", "/tmp/b.jpg", true)))
}

func TestStore_Find(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	sut := initSUT(t)

	r.Nil(sut.Record(newResult("id-1", "/tmp/a.jpg", true)))
	r.Nil(sut.Record(newResult("id-2", "/tmp/b.jpg", false)))
	r.Nil(sut.Record(newResult("id-3", "/tmp/a.jpg", false)))
	r.Nil(sut.Record(newResult("id-4", "/tmp/c.jpg", true)))

	t.Run("Count", func(t *testing.T) {
		count, err := sut.Count()
		a.Nil(err)
		a.Equal(uint64(4), count)
	})

	t.Run("By path", func(t *testing.T) {
		results, err := sut.FindByPath("/tmp/a.jpg")
		if a.Nil(err) && a.Equal(2, len(results)) {
			a.Equal("id-1", results[0].RequestId)
			a.Equal("id-3", results[1].RequestId)
		}
	})

	t.Run("By unknown path", func(t *testing.T) {
		results, err := sut.FindByPath("/tmp/none.jpg")
		a.Nil(err)
		a.Equal(0, len(results))
	})

	t.Run("Resized newest first", func(t *testing.T) {
		results, err := sut.FindResized(0)
		if a.Nil(err) && a.Equal(2, len(results)) {
			a.Equal("id-4", results[0].RequestId)
			a.Equal("id-1", results[1].RequestId)
		}
	})

	t.Run("Resized with limit", func(t *testing.T) {
		results, err := sut.FindResized(1)
		if a.Nil(err) && a.Equal(1, len(results)) {
			a.Equal("id-4", results[0].RequestId)
		}
	})

	t.Run("Unknown request id", func(t *testing.T) {
		_, err := sut.FindByRequestId("missing")
		a.NotNil(err)
	})
}

func TestStore_Record_Concurrent(t *testing.T) {
	a := assert.New(t)
	sut := initSUT(t)

	const writers = 8
	errs := make(chan error, writers)
	wg := sync.WaitGroup{}
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- sut.Record(newResult(fmt.Sprintf("id-%d", i), "/tmp/a.jpg", true))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		a.Nil(err)
	}
	count, err := sut.Count()
	a.Nil(err)
	a.Equal(uint64(writers), count)
}
