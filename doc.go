// Package ashare provides the types and functions to track a personal
// portfolio of Shanghai and Shenzhen listed stocks. It is designed to be
// local-first: the whole state lives in two human-editable JSON files that
// the user owns and can inspect or fix by hand.
//
// The core functionalities include:
//   - Symbol Formatting: mapping bare or dotted stock codes to the
//     exchange-qualified form used both as the position key and as the
//     quote-request parameter.
//   - Portfolio Management: at most one position per formatted symbol,
//     merged on repeated buys via weighted-average cost. No transaction
//     history is kept.
//   - Valuation: one quote fetch per held symbol per cycle, producing
//     per-position cost, market value and unrealized profit plus the
//     aggregate totals.
//   - Data Persistence: encoding and decoding the configuration and the
//     portfolio to and from JSON documents in a single folder.
//
// Quote providers implement the Quoter interface and live in their own
// packages (sina, netease). This package serves as the foundational logic
// for the `agu` command-line tool.
package ashare
