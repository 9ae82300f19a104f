/*
Package sigwallet implements a threshold multi signature wallet with an
ordered owner list.

A wallet is created with a list of distinct owner addresses and a threshold
that tells how many of them must sign to act as the wallet. The wallet itself
is represented by a condition address, so anything that can hold permissions
on chain can be owned by a wallet.

The owner list is ordered. Replacing an owner keeps the slot position and the
threshold untouched and requires naming the predecessor, the owner directly
preceding the one being replaced, or an empty predecessor for the list head.

Beyond the owners, a wallet can enable module addresses. An enabled module is
allowed to issue owner replacement instructions through the Controller
without carrying the wallet authority. Governance enables and disables
modules with the wallet authority condition.
*/
package sigwallet
