// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/newswire/core"
)

// ArticleMUS is the binary serializer for core.Article.
// Timestamps travel as Unix microseconds.
var ArticleMUS = articleMUS{}

var vectorMUS = ord.NewSliceSer[float32](varint.Float32)

type articleMUS struct{}

func (articleMUS) Marshal(a core.Article, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(a.Id), bs)
	n += ord.String.Marshal(a.Title, bs[n:])
	n += varint.Int64.Marshal(a.PubDate.UnixMicro(), bs[n:])
	n += ord.String.Marshal(a.GUID, bs[n:])
	n += ord.String.Marshal(a.Link, bs[n:])
	n += ord.String.Marshal(a.Description, bs[n:])
	n += ord.String.Marshal(a.Content, bs[n:])
	n += vectorMUS.Marshal(a.Vector, bs[n:])
	return
}

func (articleMUS) Unmarshal(bs []byte) (a core.Article, n int, err error) {
	var (
		n1      int
		id      uint64
		pubDate int64
	)
	id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	a.Id = core.ID(id)

	a.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	pubDate, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.PubDate = time.UnixMicro(pubDate).UTC()

	a.GUID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	a.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	a.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	a.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	a.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (articleMUS) Size(a core.Article) (size int) {
	size = varint.Uint64.Size(uint64(a.Id))
	size += ord.String.Size(a.Title)
	size += varint.Int64.Size(a.PubDate.UnixMicro())
	size += ord.String.Size(a.GUID)
	size += ord.String.Size(a.Link)
	size += ord.String.Size(a.Description)
	size += ord.String.Size(a.Content)
	size += vectorMUS.Size(a.Vector)
	return
}

func (articleMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 4; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// MarshalArticle serializes an Article to bytes.
func MarshalArticle(article *core.Article) []byte {
	buf := make([]byte, ArticleMUS.Size(*article))
	ArticleMUS.Marshal(*article, buf)
	return buf
}

// UnmarshalArticle deserializes an Article from bytes.
func UnmarshalArticle(data []byte) (*core.Article, error) {
	article, _, err := ArticleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
