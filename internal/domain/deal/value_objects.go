package deal

import "encoding/json"

// ImageRef resolves the backend's loosely shaped image_link field once at the
// boundary: it is either a URL string or an {error} object / null, which both
// collapse to Missing.
type ImageRef struct {
	url string
	ok  bool
}

func NewImageURL(url string) ImageRef {
	if url == "" {
		return ImageRef{}
	}
	return ImageRef{url: url, ok: true}
}

func MissingImage() ImageRef {
	return ImageRef{}
}

func (r ImageRef) URL() (string, bool) {
	return r.url, r.ok
}

func (r ImageRef) IsMissing() bool {
	return !r.ok
}

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = NewImageURL(s)
		return nil
	}
	// Object, null, or anything else: no usable image.
	*r = MissingImage()
	return nil
}

func (r ImageRef) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return json.Marshal(r.url)
}
