// Package txledger maintains client accounts from a stream of transaction
// records.
//
// The supported records are:
//   - deposit: credits the client's available funds.
//   - withdrawal: debits the client's available funds, if they are sufficient.
//   - dispute: holds the funds of a previous deposit, pending resolution.
//   - resolve: releases the funds held by a dispute.
//   - chargeback: removes the funds held by a dispute and locks the account.
//
// A [Processor] owns all the accounts. Records are submitted to it from any
// number of goroutines and applied one at a time, in order, by a single
// goroutine, so that no locking is needed on the accounts themselves.
// Closing the Processor returns the final [Snapshot] of the accounts.
//
// Invalid instructions (insufficient funds, unknown or undisputed
// transaction) are ignored, the feed is fire-and-forget.
//
// Amounts are exact decimals with four fractional digits, see [Amount].
//
// The package also provides the encoding of records (CSV and JSONL) and
// snapshots (CSV and JSON) used by the `txl` command-line tool.
package txledger
