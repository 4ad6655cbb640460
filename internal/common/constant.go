package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RoleMember is the role assigned to users created without an explicit one.
const RoleMember = "member"
