/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "irtpa-tdbot/0.4.1 (+https://github.com/mikeb26/irtpa-tdbot)"
	WebCacheBucket = "bopmatic-irtpa-tdbot-prod-webcache"
)
