// Copyright (c) 2020-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for long running generation
workloads.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals about generated output between each logging
  interval
  - Total number of generated bits
  - Total number of generate requests
- Logs all cumulative data every 10 seconds
- Immediately logs any outstanding data when forced, such as after the final
  request of a run
*/
package progresslog
