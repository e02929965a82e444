// archive.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements Archive, optional Cloud Datastore persistence for
// accepted boards, used for analytics outside the synchronous search core.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package boggle

import (
	"context"
	"time"

	"cloud.google.com/go/datastore"
)

// BoardRecord is a persisted record of an accepted board.
type BoardRecord struct {
	DiceLayout string
	NumWords   int
	Score      int
	Longest    int
	Tries      int
	AcceptedAt time.Time
}

// Archive persists accepted boards to Cloud Datastore. A nil *Archive is
// valid: Save and Close both become no-ops, so the HTTP handler works
// without a configured datastore project.
type Archive struct {
	client *datastore.Client
	kind   string
}

// NewArchive opens a Datastore client for projectID.
func NewArchive(ctx context.Context, projectID string) (*Archive, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, newError(IoError, "NewArchive", err)
	}
	return &Archive{client: client, kind: "BoggleBoard"}, nil
}

// Save writes rec as a new, incomplete-keyed entity.
func (a *Archive) Save(ctx context.Context, rec *BoardRecord) error {
	if a == nil {
		return nil
	}
	if rec.AcceptedAt.IsZero() {
		rec.AcceptedAt = time.Now()
	}
	key := datastore.IncompleteKey(a.kind, nil)
	_, err := a.client.Put(ctx, key, rec)
	return err
}

// Close releases the underlying Datastore client.
func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	return a.client.Close()
}
