package assets

// SetProjectData updates an asset's url and data_ipfs fields. Permitted for
// the asset's owner or the custodian, and only while supply is still zero —
// once any amount has been minted the descriptive metadata is frozen in
// place.
func (e *Engine) SetProjectData(caller AccountId, id AssetId, url, dataIPFS []byte) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		custodian, _ := t.Custodian()
		if caller != details.Owner && caller != custodian {
			return nil, ErrNoPermission
		}
		if details.Supply > 0 {
			return nil, ErrCannotChangeAfterMint
		}
		if !boundedStringOK(e.cfg.StringLimit, url) || !boundedStringOK(e.cfg.StringLimit, dataIPFS) {
			return nil, ErrBadMetadata
		}

		md, ok := t.Metadata(id)
		if !ok {
			return nil, ErrNoMetadata
		}
		md.URL = append([]byte(nil), url...)
		md.DataIPFS = append([]byte(nil), dataIPFS...)
		t.PutMetadata(id, md)

		return []Event{newEvent(EventMetadataUpdated, id, map[string]any{"url": url, "data_ipfs": dataIPFS})}, nil
	})
}

// ForceSetMetadata overwrites every metadata field for an existing asset.
// Privileged only; whatever deposit is already reserved against the metadata
// entry is left untouched.
func (e *Engine) ForceSetMetadata(id AssetId, name, symbol, url, dataIPFS []byte, decimals uint8, isFrozen bool) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		if _, ok := t.Asset(id); !ok {
			return nil, ErrUnknown
		}
		for _, s := range [][]byte{name, symbol, url, dataIPFS} {
			if !boundedStringOK(e.cfg.StringLimit, s) {
				return nil, ErrBadMetadata
			}
		}

		existing, _ := t.Metadata(id)
		t.PutMetadata(id, AssetMetadata{
			Deposit:  existing.Deposit,
			Name:     append([]byte(nil), name...),
			Symbol:   append([]byte(nil), symbol...),
			URL:      append([]byte(nil), url...),
			DataIPFS: append([]byte(nil), dataIPFS...),
			Decimals: decimals,
			IsFrozen: isFrozen,
		})

		return []Event{
			newEvent(EventMetadataSet, id, map[string]any{"name": name, "symbol": symbol, "decimals": decimals, "is_frozen": isFrozen}),
			newEvent(EventMetadataUpdated, id, map[string]any{"url": url, "data_ipfs": dataIPFS}),
		}, nil
	})
}

// ForceClearMetadata removes an asset's metadata entry and refunds its
// deposit to the asset's current owner. Privileged only.
func (e *Engine) ForceClearMetadata(id AssetId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		md, ok := t.Metadata(id)
		if !ok {
			return nil, ErrUnknown
		}
		_ = e.currency.Unreserve(details.Owner, md.Deposit)
		t.DeleteMetadata(id)
		return []Event{newEvent(EventMetadataCleared, id, nil)}, nil
	})
}
