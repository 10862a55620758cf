package data

import (
	dataV1 "github.com/flashbots/relay-data/sdk/data/v1"
)

// DataSDK holds the versions of the relay data API.
type DataSDK struct {
	v1 *dataV1.DataV1SDK
}

// New returns the data API for client.
func New(client dataV1.Doer) *DataSDK {
	return &DataSDK{
		v1: dataV1.New(client),
	}
}

// V1 returns the v1 data API.
func (s *DataSDK) V1() *dataV1.DataV1SDK {
	return s.v1
}
