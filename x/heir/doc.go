/*

Package heir lets every owner of a multi owner wallet designate a successor
for its own slot.

An owner configures a beneficiary together with an activation time that must
lie in the future. Until a claim succeeds the owner stays in full control:
the entry can be overwritten, prolonged or removed at any moment. Once the
activation time has passed the beneficiary, and only the beneficiary, can
claim the slot. The claim issues a single owner replacement instruction to
the wallet and deletes the entry, so a configuration can be consumed exactly
once.

The wallet itself is an external collaborator reached through the Wallet
interface. This package never moves funds and never touches the wallet
signature threshold. It only asks the wallet to replace one owner address
with another, and the wallet applies its own validation: the module must be
enabled on the wallet, the replaced address must currently be an owner, the
successor must not be, and the caller supplied predecessor pointer must match
the wallet owner ordering. Any wallet rejection aborts the claim with no
state change, which keeps a failed claim retriable.

A deployment is bound to exactly one wallet during genesis initialization
and the binding can never change afterwards.

*/
package heir
