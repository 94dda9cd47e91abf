// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/hashminer/blockrecord"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/version"
)

const (
	chainPath    = "/chain"
	pendingPath  = "/pending_transactions"
	proposePath  = "/propose_block"
	contentType  = "application/json"
	maximumBody  = 64 * 1024 * 1024
	maximumError = 256 // characters of a failure body kept in errors
)

// defaults for the configuration
const (
	DefaultTimeout = 10 // seconds
	DefaultRate    = 2  // requests per second
	DefaultBurst   = 3
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	URL     string  `gluamapper:"url" json:"url"`
	Timeout int     `gluamapper:"timeout" json:"timeout"`
	Rate    float64 `gluamapper:"rate" json:"rate"`
	Burst   int     `gluamapper:"burst" json:"burst"`
}

// Client - access to the blockchain service
type Client struct {
	log       *logger.L
	base      string
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	userAgent string
}

// New - validate the configuration and create a client
func New(configuration *Configuration, log *logger.L) (*Client, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	base, err := ValidateURL(configuration.URL)
	if nil != err {
		return nil, err
	}
	if configuration.Timeout <= 0 {
		return nil, fault.ErrInvalidTimeout
	}
	if configuration.Rate <= 0 {
		return nil, fault.ErrInvalidRate
	}
	if configuration.Burst <= 0 {
		return nil, fault.ErrInvalidBurst
	}

	timeout := time.Duration(configuration.Timeout) * time.Second

	return &Client{
		log:  log,
		base: base,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(configuration.Rate), configuration.Burst),
		timeout:   timeout,
		userAgent: "hashminer/" + version.Version,
	}, nil
}

// ValidateURL - check the service address and return it without a
// trailing slash
func ValidateURL(address string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(address))
	if nil != err {
		return "", errors.Wrap(fault.ErrInvalidAPIAddress, err.Error())
	}
	if "http" != u.Scheme && "https" != u.Scheme {
		return "", errors.Wrapf(fault.ErrInvalidAPIAddress, "scheme: %q", u.Scheme)
	}
	if "" == u.Host {
		return "", errors.Wrapf(fault.ErrInvalidAPIAddress, "no host in: %q", address)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// GetChain - all blocks of the remote chain, oldest first
//
// every block must be an object but only the last one must carry both
// index and hash
func (c *Client) GetChain(ctx context.Context) ([]blockrecord.ChainTip, error) {

	body, err := c.fetch(ctx, http.MethodGet, chainPath, nil, http.StatusOK)
	if nil != err {
		return nil, errors.Wrap(err, fault.ErrChainUnavailable.Error())
	}

	var reply struct {
		Chain []json.RawMessage `json:"chain"`
	}
	if err := json.Unmarshal(body, &reply); nil != err {
		return nil, errors.Wrap(fault.ErrMalformedResponse, err.Error())
	}
	if nil == reply.Chain {
		return nil, errors.Wrap(fault.ErrMalformedResponse, "no chain member")
	}

	chain := make([]blockrecord.ChainTip, len(reply.Chain))
	for i, raw := range reply.Chain {
		var entry struct {
			Index *uint64 `json:"index"`
			Hash  *string `json:"hash"`
		}
		if err := json.Unmarshal(raw, &entry); nil != err {
			return nil, errors.Wrapf(fault.ErrMalformedResponse, "block[%d]: %s", i, err)
		}

		// only the tip is used to build the next block
		if nil == entry.Index || nil == entry.Hash {
			if i == len(reply.Chain)-1 {
				return nil, errors.Wrapf(fault.ErrMissingChainTipField, "block[%d]", i)
			}
			c.log.Debugf("block[%d]: missing index or hash", i)
		}
		if nil != entry.Index {
			chain[i].Index = *entry.Index
		}
		if nil != entry.Hash {
			chain[i].Hash = *entry.Hash
		}
	}

	c.log.Debugf("chain length: %d", len(chain))
	return chain, nil
}

// GetPendingTransactions - transactions waiting to be included in a block
func (c *Client) GetPendingTransactions(ctx context.Context) (blockrecord.Transactions, error) {

	body, err := c.fetch(ctx, http.MethodGet, pendingPath, nil, http.StatusOK)
	if nil != err {
		return nil, errors.Wrap(err, fault.ErrPendingUnavailable.Error())
	}

	var transactions blockrecord.Transactions
	if err := json.Unmarshal(body, &transactions); nil != err {
		return nil, errors.Wrap(fault.ErrMalformedResponse, err.Error())
	}
	if nil == transactions {
		transactions = blockrecord.Transactions{}
	}

	c.log.Debugf("pending transactions: %d", len(transactions))
	return transactions, nil
}

// ProposeBlock - submit a mined block; nil only if it was accepted
func (c *Client) ProposeBlock(ctx context.Context, block *blockrecord.Block) error {

	data, err := json.Marshal(block)
	if nil != err {
		return err
	}

	body, err := c.fetch(ctx, http.MethodPost, proposePath, data, http.StatusCreated)
	if nil != err {
		if fault.Is(err, fault.ErrUnexpectedStatus) {
			return errors.Wrap(fault.ErrProposalRejected, err.Error())
		}
		return err
	}

	c.log.Infof("proposal accepted: %s", truncate(body))
	return nil
}

// rate limited request with timeout; any status other than expected
// is an error carrying the response text
func (c *Client) fetch(ctx context.Context, method string, path string, data []byte, expected int) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); nil != err {
		return nil, errors.Wrap(fault.ErrRequestFailed, err.Error())
	}

	var content io.Reader
	if nil != data {
		content = bytes.NewReader(data)
	}

	u := c.base + path
	request, err := http.NewRequest(method, u, content)
	if nil != err {
		return nil, errors.Wrap(fault.ErrRequestFailed, err.Error())
	}
	request = request.WithContext(ctx)
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("Accept", contentType)
	if nil != data {
		request.Header.Set("Content-Type", contentType)
	}

	c.log.Debugf("%s %s", method, u)

	response, err := c.client.Do(request)
	if nil != err {
		return nil, errors.Wrap(fault.ErrRequestFailed, err.Error())
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(response.Body, maximumBody))
	if nil != err {
		return nil, errors.Wrap(fault.ErrRequestFailed, err.Error())
	}

	if expected != response.StatusCode {
		return nil, errors.Wrapf(fault.ErrUnexpectedStatus, "%s %s status: %d body: %q", method, u, response.StatusCode, truncate(body))
	}
	return body, nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maximumError {
		return s[:maximumError] + "…"
	}
	return s
}
