package bitvec

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToBitmap exports the indices of set bits as a Roaring bitmap. The bitmap
// captures positions only; length and ordering policy are not represented.
func (v *BitVec[T]) ToBitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i := range v.Ones() {
		bm.Add(uint32(i))
	}
	return bm
}

// FromBitmap builds a BitVec of the given length whose set bits are the
// members of bm. It returns an error wrapping ErrBitmapRange when bm
// contains an index at or beyond length.
func FromBitmap[T Element](order Order, bm *roaring.Bitmap, length int) (*BitVec[T], error) {
	v := MakeRepeat[T](order, 0, length)
	it := bm.Iterator()
	for it.HasNext() {
		i := it.Next()
		if uint64(i) >= uint64(length) {
			return nil, &ErrBitmapTooLarge{Index: i, Length: length}
		}
		v.Set(int(i), true)
	}
	return v, nil
}
