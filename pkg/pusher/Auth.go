package pusher

import (
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Method builds public key auth for remote, using the user of the remote url when it has one.
func (a *SshAuth) Method(remote string) (transport.AuthMethod, error) {
	user := ssh.DefaultUsername

	if endpoint, err := transport.NewEndpoint(remote); err == nil && endpoint.User != "" {
		user = endpoint.User
	}

	keys, err := ssh.NewPublicKeysFromFile(user, a.PrivateKey, a.PrivateKeyPassword)
	if err != nil {
		return nil, err
	}

	if a.KnownHosts != "" {
		callback, err := knownhosts.New(a.KnownHosts)
		if err != nil {
			return nil, err
		}

		keys.HostKeyCallback = callback
	}

	return keys, nil
}
